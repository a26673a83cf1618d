package render

import (
	"strings"

	"github.com/dear-data/vjournal/internal/domain"
)

// StressStorm renders visual standard B: a stress timeline with scribble
// clouds over the spikes.
func StressStorm(scene domain.Scene) string {
	timeline := scene.Dimensions.Timeline
	if timeline == nil {
		timeline = []domain.StressPoint{}
	}
	return strings.Replace(stressTemplate, "__TIMELINE__", mustJSON(timeline), 1)
}

const stressTemplate = `
// Stress Storm (Standard B)

var timeline = __TIMELINE__;

var bounds = view.bounds;
var margin = 60;
var inner = bounds.expand(-margin);

var bg = new Path.Rectangle(bounds);
bg.fillColor = new Color(0.98, 0.96, 0.95);

var sheet = new Path.Rectangle(inner.expand(20));
sheet.fillColor = new Color(1,1,1,0.96);
sheet.strokeColor = new Color(0.85,0.8,0.78);
sheet.strokeWidth = 1.5;

var title = new PointText(new Point(inner.left, inner.top - 24));
title.justification = 'left';
title.content = "Stress Storm Timeline";
title.fillColor = new Color(0.2,0.22,0.3);
title.fontSize = 18;

var count = timeline.length;
if (count === 0) {
    var msg = new PointText(inner.center);
    msg.justification = 'center';
    msg.content = "No stress data to draw (timeline empty)";
    msg.fillColor = new Color(0.4,0.4,0.4);
    msg.fontSize = 14;
} else {
    var leftX = inner.left + 40;
    var rightX = inner.right - 40;
    var stepX = (count > 1) ? (rightX - leftX) / (count - 1) : 0;

    var bottomY = inner.bottom - 60;
    var topY    = inner.top + 60;

    var stormPath = new Path();
    stormPath.strokeColor = new Color(0.45, 0.2, 0.35);
    stormPath.strokeWidth = 2.5;

    var scribbleGroup = new Group();

    for (var i = 0; i < count; i++) {
        var t = timeline[i];
        var stress = t.stress || 0;
        var label = t.label || "";

        var x = leftX + stepX * i;
        var norm = Math.min(1, Math.max(0, stress / 5.0));
        var y = bottomY - norm * (bottomY - topY);

        var pt = new Point(x + (Math.random()-0.5)*8,
                           y + (Math.random()-0.5)*10);
        stormPath.add(pt);

        if (stress >= 3) {
            var cloud = new Path();
            var cloudPoints = 14;
            var baseR = 16 + stress * 3;
            for (var c = 0; c < cloudPoints; c++) {
                var ang = (Math.PI * 2 * c) / cloudPoints;
                var rr = baseR + (Math.random()*8-4);
                var cp = pt.add(new Point(Math.cos(ang)*rr, Math.sin(ang)*rr));
                if (c === 0) cloud.add(cp);
                else cloud.lineTo(cp);
            }
            cloud.closed = true;
            cloud.fillColor = new Color(0.85,0.78,0.86,0.4);
            cloud.strokeColor = new Color(0.45,0.32,0.55,0.8);
            cloud.strokeWidth = 1;
            scribbleGroup.addChild(cloud);
        }

        if (i % 2 === 0) {
            var lp = new Point(x, bottomY + 30);
            var txt = new PointText(lp);
            txt.justification = 'center';
            txt.content = label;
            txt.fillColor = new Color(0.35,0.35,0.38);
            txt.fontSize = 8;
        }
    }

    stormPath.smooth();

    var baseLine = new Path.Line(
        new Point(leftX-20, bottomY),
        new Point(rightX+20, bottomY)
    );
    baseLine.strokeColor = new Color(0.85,0.8,0.78);
    baseLine.strokeWidth = 1;

    function onFrame(event) {
        var t = event.time;
        scribbleGroup.rotate(0.03, inner.center);
        for (var i = 0; i < stormPath.segments.length; i++) {
            var seg = stormPath.segments[i];
            seg.point.y += Math.sin(t*0.8 + i*0.7) * 0.4;
        }
        stormPath.smooth();
    }
}
`
